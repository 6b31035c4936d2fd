// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the GifGate server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Region / S3BaseEndpoint: object storage settings.
//   - PublicBucket / PendingBucket / UserBucket: the three logical buckets
//     (promoted gifs, unverified gifs, persisted user records).
//   - SignedURLTTL: validity of presigned PUT urls.
//   - PBKDF2Iterations: cost factor for the credential codec.
//   - SMTP*: outbound mail settings for verification emails.
//   - VerifyBaseURL: link base embedded in verification emails.
//   - AdminSecret: HMAC secret for admin tokens (HS256). Do not use test
//     defaults in prod.
//   - AdminTokenValidity: admin token lifetime.
type Config struct {
	EndpointAddrHTTP   string
	S3RootUser         string
	S3RootPassword     string
	S3Region           string
	S3BaseEndpoint     string
	PublicBucket       string
	PendingBucket      string
	UserBucket         string
	SignedURLTTL       time.Duration
	PBKDF2Iterations   int
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	SMTPUseTLS         bool
	VerifyBaseURL      string
	AdminSecret        string
	AdminTokenValidity time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PublicBucket = "gifs.radblock.xyz"
	c.PendingBucket = "radblock-pending-gifs"
	c.UserBucket = "radblock-users"
	c.SignedURLTTL = 15 * time.Minute
	c.PBKDF2Iterations = 10000
	c.SMTPHost = "127.0.0.1"
	c.SMTPPort = 25
	c.SMTPFrom = "verify@radblock.xyz"
	c.VerifyBaseURL = "https://radblock.xyz/verify"
	c.AdminSecret = "secretKey"
	c.AdminTokenValidity = 5 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
