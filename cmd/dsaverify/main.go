// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command dsaverify checks a DSA signature over a file against a PEM
// public key, printing a human-readable verdict and exiting non-zero
// unless the signature verified.
package main

import (
	"fmt"
	"os"

	"github.com/marcizhu/dsaverify-go"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runVerify(c *cli.Context) error {
	logger := newLogger(c.Bool("v"))
	defer logger.Sync()

	args := c.Args()
	if len(args) != 3 {
		return cli.NewExitError("usage: dsaverify <file> <pubkey-path> <signature-path>", 2)
	}
	filePath, pubkeyPath, sigPath := args[0], args[1], args[2]

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Debug("reading message file failed", zap.Error(err))
		return cli.NewExitError(fmt.Sprintf("dsaverify: %v", err), 1)
	}
	pubkeyPEM, err := os.ReadFile(pubkeyPath)
	if err != nil {
		logger.Debug("reading public key file failed", zap.Error(err))
		return cli.NewExitError(fmt.Sprintf("dsaverify: %v", err), 1)
	}
	sigB64, err := os.ReadFile(sigPath)
	if err != nil {
		logger.Debug("reading signature file failed", zap.Error(err))
		return cli.NewExitError(fmt.Sprintf("dsaverify: %v", err), 1)
	}

	result := dsaverify.VerifyBlob(data, string(pubkeyPEM), string(sigB64))
	logger.Debug("verification finished",
		zap.Int("result", int(result)),
		zap.String("stage", result.String()))

	switch result {
	case dsaverify.VerificationOK:
		fmt.Println("Verification OK")
		return nil
	case dsaverify.VerificationFailed:
		fmt.Println("Verification FAILED")
		return cli.NewExitError("", 1)
	default:
		fmt.Printf("Verification FAILED: %s\n", result)
		return cli.NewExitError("", 1)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "dsaverify"
	app.Usage = "verify a DSA signature over a file against a PEM public key"
	app.UsageText = "dsaverify [-v] <file> <pubkey-path> <signature-path>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "log which stage rejected the input",
		},
	}
	app.Action = runVerify

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
