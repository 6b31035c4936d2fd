package config

import (
	"flag"
	"os"
	"time"

	"github.com/radblock/gifgate/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-u string   S3 root user
//	-p string   S3 root password
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-b string   public gif bucket
//	-n string   pending gif bucket
//	-k string   user record bucket
//	-t int      signed url validity, minutes
//	-i int      pbkdf2 iteration count
//	-s string   admin HMAC secret key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-g", "-e", "-b", "-n", "-k", "-t", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.PublicBucket, "b", config.PublicBucket, "public gif bucket")
	fs.StringVar(&config.PendingBucket, "n", config.PendingBucket, "pending gif bucket")
	fs.StringVar(&config.UserBucket, "k", config.UserBucket, "user record bucket")

	signedURLTTL := fs.Int("t", int(config.SignedURLTTL.Minutes()), "signed_url_ttl (in minutes)")
	fs.IntVar(&config.PBKDF2Iterations, "i", config.PBKDF2Iterations, "pbkdf2 iteration count")

	fs.StringVar(&config.AdminSecret, "s", config.AdminSecret, "admin secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SignedURLTTL = time.Duration(*signedURLTTL) * time.Minute
}
