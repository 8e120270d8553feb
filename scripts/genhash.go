//go:build ignore

// Prints a bcrypt hash for MOCK_AUTH_PASSWORD_HASH.
//
//	go run scripts/genhash.go 131204
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/genhash.go <password>")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("MOCK_AUTH_PASSWORD_HASH=%s\n", hash)
}
