// cmd/hashpass/main.go
// Prints a bcrypt hash of the admin password for ADMIN_PASSWORD_HASH.
//
// Usage:
//
//	go run ./cmd/hashpass -password testing
//	echo -n testing | go run ./cmd/hashpass
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/padraicbc/speedtip/auth"
)

func main() {
	password := flag.String("password", "", "plain-text password (read from stdin when empty)")
	flag.Parse()

	secret := *password
	if secret == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal("either -password or a password on stdin is required")
		}
		secret = strings.TrimRight(line, "\r\n")
	}

	hash, err := auth.HashPassword(secret)
	if err != nil {
		log.Fatal("hash:", err)
	}

	verifier, err := auth.NewVerifier("", hash)
	if err != nil || !verifier.Verify(secret) {
		log.Fatal("generated hash does not verify")
	}

	// Single quotes keep godotenv from expanding the $ signs.
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
