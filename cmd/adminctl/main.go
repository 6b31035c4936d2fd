// adminctl performs administrative actions against a running server:
// banning an account or resetting its daily rate limit. It prompts for
// the admin secret and mints a short-lived bearer token locally.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/radblock/gifgate/internal/server/auth"
)

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8080", "server base url")
	email := flag.String("email", "", "account email")
	action := flag.String("action", "", "ban | reset")
	flag.Parse()

	if *email == "" || (*action != "ban" && *action != "reset") {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Fprint(os.Stderr, "admin secret: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("reading secret: %v", err)
	}

	token, err := auth.GenerateToken(auth.RoleAdmin, secret, 5*time.Minute)
	if err != nil {
		log.Fatalf("minting token: %v", err)
	}

	body, err := json.Marshal(map[string]string{"email": *email})
	if err != nil {
		log.Fatalf("encoding request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, *addr+"/admin/"+*action, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s\n", resp.Status, out)
}
