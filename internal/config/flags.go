package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f notes directory
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-variant note edition (strict or freetext)
//	-page-size notes per page
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-user basic-auth user name
//	-auth-password-hash argon2id hash of the basic-auth password
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var notesDir, databaseDSN, driver string
	var variant string
	var pageSize int
	var jsonConfigPath string
	var requestTimeout time.Duration
	var authUser, authPasswordHash string

	fs := flag.NewFlagSet("work-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&notesDir, "f", "", "Notes directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&variant, "variant", "", "Note edition (strict, freetext)")
	fs.IntVar(&pageSize, "page-size", 0, "Notes per page")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&authUser, "auth-user", "", "Basic auth user")
	fs.StringVar(&authPasswordHash, "auth-password-hash", "", "Basic auth argon2id password hash")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Variant:  variant,
			PageSize: pageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Files: Files{
				NotesDir: notesDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			User:         authUser,
			PasswordHash: authPasswordHash,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
