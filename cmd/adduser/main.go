package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"finance-tracker/internal/storage"

	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Account email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	dataDir := fs.String("data", "./data", "Path to the data directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> [-password <password>] [-data <dir>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout) // Print newline after password input
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	// Allow overriding the data dir via env var when the flag default is used
	if dir := os.Getenv("DATA_DIR"); dir != "" && *dataDir == "./data" {
		*dataDir = dir
	}

	stores, err := storage.Open(storage.BackendCSV, *dataDir, "")
	if err != nil {
		return fmt.Errorf("failed to open stores: %w", err)
	}
	defer stores.Close()

	account, err := stores.Accounts.Register(*email, password)
	if err == storage.ErrDuplicateEmail {
		return fmt.Errorf("account %s already exists", *email)
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Fprintf(stdout, "Account %s created successfully with ID %d\n", account.Email, account.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	// Check if stdin is a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
