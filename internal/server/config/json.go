package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/radblock/gifgate/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Interval fields are plain integers in seconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into
// the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP      string `json:"endpoint_addr_http"`
	S3RootUser            string `json:"s3_root_user"`
	S3RootPassword        string `json:"s3_root_password"`
	S3Region              string `json:"s3_region"`
	S3BaseEndpoint        string `json:"s3_base_endpoint"`
	PublicBucket          string `json:"public_bucket"`
	PendingBucket         string `json:"pending_bucket"`
	UserBucket            string `json:"user_bucket"`
	SignedURLTTLSec       int    `json:"signed_url_ttl_sec"`
	PBKDF2Iterations      int    `json:"pbkdf2_iterations"`
	SMTPHost              string `json:"smtp_host"`
	SMTPPort              int    `json:"smtp_port"`
	SMTPUsername          string `json:"smtp_username"`
	SMTPPassword          string `json:"smtp_password"`
	SMTPFrom              string `json:"smtp_from"`
	SMTPUseTLS            bool   `json:"smtp_use_tls"`
	VerifyBaseURL         string `json:"verify_base_url"`
	AdminSecret           string `json:"admin_secret"`
	AdminTokenValiditySec int    `json:"admin_token_validity_sec"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. Zero-value fields in the
// file leave the corresponding Config fields untouched, so the file can
// override only a subset of settings.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlayString(&config.S3RootUser, c.S3RootUser)
	overlayString(&config.S3RootPassword, c.S3RootPassword)
	overlayString(&config.S3Region, c.S3Region)
	overlayString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlayString(&config.PublicBucket, c.PublicBucket)
	overlayString(&config.PendingBucket, c.PendingBucket)
	overlayString(&config.UserBucket, c.UserBucket)
	overlayString(&config.SMTPHost, c.SMTPHost)
	overlayString(&config.SMTPUsername, c.SMTPUsername)
	overlayString(&config.SMTPPassword, c.SMTPPassword)
	overlayString(&config.SMTPFrom, c.SMTPFrom)
	overlayString(&config.VerifyBaseURL, c.VerifyBaseURL)
	overlayString(&config.AdminSecret, c.AdminSecret)

	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SMTPUseTLS {
		config.SMTPUseTLS = true
	}
	if c.SignedURLTTLSec != 0 {
		config.SignedURLTTL = time.Duration(c.SignedURLTTLSec) * time.Second
	}
	if c.PBKDF2Iterations != 0 {
		config.PBKDF2Iterations = c.PBKDF2Iterations
	}
	if c.AdminTokenValiditySec != 0 {
		config.AdminTokenValidity = time.Duration(c.AdminTokenValiditySec) * time.Second
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
