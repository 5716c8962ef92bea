package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"storefront-client/internal/apiclient"
	"storefront-client/internal/auth"
	"storefront-client/internal/config"
	"storefront-client/internal/domain"
	cartrepo "storefront-client/internal/repository/cart"
	cartsvc "storefront-client/internal/service/cart"
	checkoutsvc "storefront-client/internal/service/checkout"
	"storefront-client/pkg/logger"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command> [flags]

commands:
  products                      list the catalog
  cart show                     print cart contents and total
  cart add -id <product-id>     add one unit of a product
  cart update -id <id> -delta n adjust a line's quantity (floors at 1)
  cart remove -id <product-id>  remove a line
  cart clear                    empty the cart
  checkout                      place an order from the cart
  orders                        list past orders
  profile show                  print the profile
  profile update [-first ..] [-last ..] [-address ..]`)
}

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Options{Service: "storefront", Env: "local", Level: cfg.LogLevel})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	tokens := auth.File{Path: cfg.TokenPath}
	client := apiclient.New(cfg.APIEndpoint, cfg.HTTPTimeout, tokens, log)
	store := cartrepo.NewFile(cfg.CartStorePath)
	cart := cartsvc.New(ctx, store, log)
	checkout := checkoutsvc.New(cart, client, log)

	var err error
	switch os.Args[1] {
	case "products":
		err = runProducts(ctx, client)
	case "cart":
		err = runCart(ctx, cart, client, os.Args[2:])
	case "checkout":
		err = runCheckout(ctx, checkout)
	case "orders":
		err = runOrders(ctx, client)
	case "profile":
		err = runProfile(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, friendly(err, cfg))
		os.Exit(1)
	}
}

// friendly maps SDK errors to the one-line messages the shopper sees.
// Structured detail already went to the logger.
func friendly(err error, cfg config.Config) string {
	var httpErr *apiclient.HTTPError
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return fmt.Sprintf("You are not signed in. Save your session token to %s and retry.", cfg.TokenPath)
	case errors.Is(err, domain.ErrEmptyCart):
		return "Your cart is empty!"
	case errors.Is(err, domain.ErrCheckoutInFlight):
		return "A checkout is already in progress."
	case errors.As(err, &httpErr):
		return "The store could not complete the request. Please try again."
	default:
		return "Something went wrong talking to the store. Please try again."
	}
}

func runProducts(ctx context.Context, client *apiclient.Client) error {
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%-10s  $%-8s  %s\n", p.ID, p.Price.StringFixed(2), p.Name)
		if p.Description != "" {
			fmt.Printf("            %s\n", p.Description)
		}
	}
	return nil
}

func runCart(ctx context.Context, cart *cartsvc.Service, client *apiclient.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		printCart(cart.Snapshot())
		return nil
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		fs.Parse(args[1:])
		if *id == "" {
			fs.Usage()
			os.Exit(2)
		}
		products, err := client.ListProducts(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.ID == *id {
				printCart(cart.Add(ctx, p))
				fmt.Printf("%s added to cart!\n", p.Name)
				return nil
			}
		}
		return fmt.Errorf("product %s: %w", *id, domain.ErrNotFound)
	case "update":
		fs := flag.NewFlagSet("cart update", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		delta := fs.Int("delta", 0, "quantity change")
		fs.Parse(args[1:])
		if *id == "" || *delta == 0 {
			fs.Usage()
			os.Exit(2)
		}
		printCart(cart.UpdateQuantity(ctx, *id, *delta))
		return nil
	case "remove":
		fs := flag.NewFlagSet("cart remove", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		fs.Parse(args[1:])
		if *id == "" {
			fs.Usage()
			os.Exit(2)
		}
		printCart(cart.Remove(ctx, *id))
		return nil
	case "clear":
		cart.Clear(ctx)
		fmt.Println("Cart cleared.")
		return nil
	default:
		usage()
		os.Exit(2)
		return nil
	}
}

func printCart(c domain.Cart) {
	if c.Empty() {
		fmt.Println("Your cart is empty!")
		return
	}
	for _, line := range c.Lines {
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Printf("%-10s  x%-3d  $%-8s  %s\n", line.Product.ID, line.Quantity, lineTotal.StringFixed(2), line.Product.Name)
	}
	fmt.Printf("Total: $%s\n", c.Total().StringFixed(2))
}

func runCheckout(ctx context.Context, checkout *checkoutsvc.Service) error {
	order, err := checkout.Checkout(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Order placed! %s (%s), total $%s\n", order.ID, order.Status, order.TotalAmount.StringFixed(2))
	return nil
}

func runOrders(ctx context.Context, client *apiclient.Client) error {
	orders, err := client.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-42s  %-10s  $%-8s  %s\n", o.ID, o.Status, o.TotalAmount.StringFixed(2), o.CreatedAt)
		for _, item := range o.Items {
			fmt.Printf("    %-10s  x%-3d  $%s each\n", item.ProductID, item.Quantity, item.PricePerUnit.StringFixed(2))
		}
	}
	return nil
}

func runProfile(ctx context.Context, client *apiclient.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		profile, err := client.GetProfile(ctx)
		if err != nil {
			return err
		}
		printProfile(profile)
		return nil
	case "update":
		fs := flag.NewFlagSet("profile update", flag.ExitOnError)
		first := fs.String("first", "", "first name")
		last := fs.String("last", "", "last name")
		address := fs.String("address", "", "shipping address")
		fs.Parse(args[1:])

		var update domain.ProfileUpdate
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "first":
				update.FirstName = first
			case "last":
				update.LastName = last
			case "address":
				update.ShippingAddress = address
			}
		})
		if update.FirstName == nil && update.LastName == nil && update.ShippingAddress == nil {
			fs.Usage()
			os.Exit(2)
		}

		profile, err := client.UpdateProfile(ctx, update)
		if err != nil {
			return err
		}
		fmt.Println("Profile updated.")
		printProfile(profile)
		return nil
	default:
		usage()
		os.Exit(2)
		return nil
	}
}

func printProfile(p *domain.Profile) {
	fmt.Printf("Name:             %s %s\n", p.FirstName, p.LastName)
	fmt.Printf("Email:            %s\n", p.Email)
	fmt.Printf("Shipping address: %s\n", p.ShippingAddress)
	fmt.Printf("Last updated:     %s\n", p.UpdatedAt)
}
