//go:build ignore

// This script generates the secrets for the admin API and the calculate endpoint.
// Run with: go run scripts/generate_keys.go [admin-password]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
		os.Exit(1)
	}
}

func main() {
	fmt.Println("=== Fuel Service Key Generator ===")
	fmt.Println()

	// JWT secret (32 bytes = 256 bits)
	jwtSecret, err := generateSecureKey(32)
	exitOnError("JWT secret", err)

	apiKey, err := generateSecureKey(24)
	exitOnError("API key", err)

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		password, err = generateSecureKey(12)
		exitOnError("admin password", err)
		fmt.Printf("Generated admin password: %s\n\n", password)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	exitOnError("admin password hash", err)

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Admin API")
	fmt.Println("ADMIN_USERNAME=admin")
	// Single quotes keep godotenv from expanding the $ segments of the hash.
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (optional, guards POST /api/fuel/calculate when AUTH_ENABLED=true)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
