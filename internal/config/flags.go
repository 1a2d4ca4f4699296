package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f image upload directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token lifetime (e.g., "24h", "30m")
//	-reset-token-duration password reset window (e.g., "10m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-smtp-host/-smtp-port/-smtp-user/-smtp-password SMTP settings
//	-mail-from sender address for outbound mail
//	-reset-base-url frontend URL the reset secret link points at
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var uploadDir string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var resetTokenDuration time.Duration
	var requestTimeout time.Duration
	var smtpHost string
	var smtpPort int
	var smtpUser string
	var smtpPassword string
	var mailFrom string
	var resetBaseURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&uploadDir, "f", "", "Image upload directory")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&resetTokenDuration, "reset-token-duration", 0, "Password reset window (e.g., 10m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	flag.IntVar(&smtpPort, "smtp-port", 0, "SMTP port")
	flag.StringVar(&smtpUser, "smtp-user", "", "SMTP username")
	flag.StringVar(&smtpPassword, "smtp-password", "", "SMTP password")
	flag.StringVar(&mailFrom, "mail-from", "", "Outbound mail sender address")
	flag.StringVar(&resetBaseURL, "reset-base-url", "", "Frontend reset URL base")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			ResetTokenDuration: resetTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Email: Email{
			Host:         smtpHost,
			Port:         smtpPort,
			Username:     smtpUser,
			Password:     smtpPassword,
			From:         mailFrom,
			ResetBaseURL: resetBaseURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
