package main

import (
	"flag"
	"fmt"
	"os"

	"VoyaGo/pkg/token"
)

// 本地联调用的 token 生成工具
// 用法: go run ./cmd/tokengen -uid demo-user
func main() {
	uid := flag.String("uid", "local-dev", "user id to embed in the token")
	flag.Parse()

	if err := token.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	accessToken, refreshToken, expiresIn, err := token.GeneratePair(*uid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: failed to generate tokens: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("uid:           %s\n", *uid)
	fmt.Printf("access_token:  %s\n", accessToken)
	fmt.Printf("refresh_token: %s\n", refreshToken)
	fmt.Printf("expires_in:    %d\n", expiresIn)
}
