// Command otpkit generates secrets and one-time passcodes and verifies
// submitted codes from the command line.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/otpkit/pkg/hotp"
	"github.com/dmitrymomot/otpkit/pkg/otp"
	"github.com/dmitrymomot/otpkit/pkg/recovery"
	"github.com/dmitrymomot/otpkit/pkg/secret"
	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func main() {
	app := &cli.App{
		Name:  "otpkit",
		Usage: "generate and verify HOTP/TOTP one-time passcodes",
		Commands: []*cli.Command{
			secretCommand(),
			totpCommand(),
			hotpCommand(),
			recoveryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func secretCommand() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "manage shared secrets",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "generate a new Base32 shared secret",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "length", Usage: "secret length in bytes", Value: secret.DefaultLength},
					&cli.BoolFlag{Name: "allow-weak", Usage: "permit lengths below the 16 byte RFC minimum"},
				},
				Action: func(c *cli.Context) error {
					opts := []secret.GenerateOption{secret.WithLength(c.Int("length"))}
					if c.Bool("allow-weak") {
						opts = append(opts, secret.AllowWeak())
					}
					s, err := secret.Generate(opts...)
					if err != nil {
						return err
					}
					fmt.Println(s)
					return nil
				},
			},
			{
				Name:  "encryption-key",
				Usage: "generate a base64 AES-256 key for the OTP_ENCRYPTION_KEY env var",
				Action: func(c *cli.Context) error {
					key, err := secret.GenerateEncodedEncryptionKey()
					if err != nil {
						return err
					}
					fmt.Println(key)
					return nil
				},
			},
		},
	}
}

func totpCommand() *cli.Command {
	return &cli.Command{
		Name:  "totp",
		Usage: "time-based one-time passcodes",
		Subcommands: []*cli.Command{
			{
				Name:  "code",
				Usage: "print the code for the current time step",
				Flags: append(commonFlags(),
					&cli.Int64Flag{Name: "period", Usage: "time step in seconds", Value: totp.DefaultPeriod},
					&cli.Int64Flag{Name: "at", Usage: "unix timestamp to compute for (default: now)"},
					&cli.BoolFlag{Name: "pretty", Usage: "group digits for display"},
				),
				Action: func(c *cli.Context) error {
					gen, err := newTOTP(c)
					if err != nil {
						return err
					}

					var opts []totp.Option
					if c.IsSet("at") {
						opts = append(opts, totp.AtTime(time.Unix(c.Int64("at"), 0)))
					}
					if c.Bool("pretty") {
						opts = append(opts, totp.Formatted())
					}

					code, err := gen.Generate(opts...)
					if err != nil {
						return err
					}
					fmt.Println(code)
					fmt.Fprintf(os.Stderr, "expires in %ds\n", gen.SecondsUntilNextWindow(opts...))
					return nil
				},
			},
			{
				Name:      "verify",
				Usage:     "verify a submitted code",
				ArgsUsage: "CODE",
				Flags: append(commonFlags(),
					&cli.Int64Flag{Name: "period", Usage: "time step in seconds", Value: totp.DefaultPeriod},
					&cli.IntFlag{Name: "window", Usage: "steps probed each side", Value: totp.DefaultWindow},
					&cli.BoolFlag{Name: "exact", Usage: "probe only the current step"},
				),
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one CODE argument")
					}
					gen, err := newTOTP(c)
					if err != nil {
						return err
					}

					var opts []totp.Option
					if c.Bool("exact") {
						opts = append(opts, totp.WithoutWindow())
					}

					ok, err := gen.Validate(c.Args().First(), opts...)
					if err != nil {
						return err
					}
					return report(ok)
				},
			},
		},
	}
}

func hotpCommand() *cli.Command {
	return &cli.Command{
		Name:  "hotp",
		Usage: "counter-based one-time passcodes",
		Subcommands: []*cli.Command{
			{
				Name:  "code",
				Usage: "print the code for a counter value",
				Flags: append(commonFlags(),
					&cli.Int64Flag{Name: "counter", Usage: "counter value", Required: true},
					&cli.BoolFlag{Name: "pretty", Usage: "group digits for display"},
				),
				Action: func(c *cli.Context) error {
					gen, err := newHOTP(c)
					if err != nil {
						return err
					}

					opts := []hotp.Option{hotp.WithMovingFactor(c.Int64("counter"))}
					if c.Bool("pretty") {
						opts = append(opts, hotp.Formatted())
					}

					code, err := gen.Generate(opts...)
					if err != nil {
						return err
					}
					fmt.Println(code)
					return nil
				},
			},
			{
				Name:      "verify",
				Usage:     "verify a submitted code against a counter",
				ArgsUsage: "CODE",
				Flags: append(commonFlags(),
					&cli.Int64Flag{Name: "counter", Usage: "counter value to start from", Required: true},
					&cli.IntFlag{Name: "window", Usage: "look-ahead steps", Value: hotp.DefaultWindow},
					&cli.BoolFlag{Name: "exact", Usage: "probe only the given counter"},
				),
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one CODE argument")
					}
					gen, err := newHOTP(c)
					if err != nil {
						return err
					}

					opts := []hotp.Option{hotp.WithMovingFactor(c.Int64("counter"))}
					if c.Bool("exact") {
						opts = append(opts, hotp.WithoutWindow())
					}

					ok, err := gen.Validate(c.Args().First(), opts...)
					if err != nil {
						return err
					}
					return report(ok)
				},
			},
		},
	}
}

func recoveryCommand() *cli.Command {
	return &cli.Command{
		Name:  "recovery",
		Usage: "single-use backup codes",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "generate backup codes",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Usage: "number of codes", Value: 10},
				},
				Action: func(c *cli.Context) error {
					codes, err := recovery.GenerateCodes(c.Int("count"))
					if err != nil {
						return err
					}
					for _, code := range codes {
						fmt.Println(code)
					}
					return nil
				},
			},
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "secret", Usage: "Base32 shared secret", Required: true, EnvVars: []string{"OTP_SECRET"}},
		&cli.StringFlag{Name: "algorithm", Usage: "hash algorithm: SHA1, SHA256 or SHA512", Value: string(otp.SHA1)},
		&cli.IntFlag{Name: "digits", Usage: "code length", Value: 6},
	}
}

func newTOTP(c *cli.Context) (*totp.Generator, error) {
	algo, err := otp.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return nil, err
	}
	cfg := totp.Config{
		Secret:    c.String("secret"),
		Algorithm: algo,
		Digits:    c.Int("digits"),
		Period:    c.Int64("period"),
	}
	if c.IsSet("window") {
		cfg.Window = c.Int("window")
	}
	return totp.New(cfg)
}

func newHOTP(c *cli.Context) (*hotp.Generator, error) {
	algo, err := otp.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return nil, err
	}
	cfg := hotp.Config{
		Secret:    c.String("secret"),
		Algorithm: algo,
		Digits:    c.Int("digits"),
	}
	if c.IsSet("window") {
		cfg.Window = c.Int("window")
	}
	return hotp.New(cfg)
}

func report(ok bool) error {
	if ok {
		fmt.Println("valid")
		return nil
	}
	fmt.Println("invalid")
	return cli.Exit("", 1)
}
