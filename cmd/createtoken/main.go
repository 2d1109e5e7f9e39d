package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"timewise.app/timewise/security"
)

func main() {
	id := flag.Int("id", 1, "employee id")
	name := flag.String("name", "dev", "unique name")
	email := flag.String("email", "dev@timewise.app", "email")
	ttl := flag.Int64("ttl", 86400, "expiry in seconds")
	flag.Parse()

	secret := os.Getenv("TIMEWISE_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("TIMEWISE_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:         *id,
		UniqueName: *name,
		Email:      *email,
		Provider:   "local",
	}, secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
