// Command token-generator mints device tokens for board clients. It is an
// operator tool: pair a tablet by generating a token for the user's ID and
// loading it into the client app.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/phrazzld/commboard-api/internal/config"
	"github.com/phrazzld/commboard-api/internal/service/auth"
)

func main() {
	userID := flag.Int64("user", 0, "board user ID to mint the token for")
	name := flag.String("name", "", "display name embedded in the token")
	secret := flag.String("secret", os.Getenv("COMMBOARD_AUTH_JWT_SECRET"), "JWT signing secret (defaults to COMMBOARD_AUTH_JWT_SECRET)")
	lifetime := flag.Duration("lifetime", 90*24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "error: -user must be a positive integer")
		flag.Usage()
		os.Exit(1)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "error: -name is required")
		flag.Usage()
		os.Exit(1)
	}
	if *secret == "" {
		fmt.Fprintln(os.Stderr, "error: -secret or COMMBOARD_AUTH_JWT_SECRET is required")
		os.Exit(1)
	}

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:     *secret,
		TokenLifetime: *lifetime,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.GenerateToken(context.Background(), *userID, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
