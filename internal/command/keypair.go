// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/scratch"
)

// keypairGenerateAction writes a new ed25519 keypair under --dir, or under a
// scratch directory when --dir is omitted, and optionally imports the public
// half into EC2.
func keypairGenerateAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		log.Fatalf("--name is mandatory")
		return errMissingArgs
	}

	dir := cmd.String("dir")
	if dir == "" {
		d, err := scratch.Push("keypair")
		if err != nil {
			return err
		}
		dir = d
	}

	kp, err := awsx.GenerateKeyPair(name, dir)
	if err != nil {
		return err
	}
	log.Infof("wrote %s and %s", kp.PrivatePath, kp.PublicPath)

	if cmd.Bool("import") {
		cfg, err := loadConfig(ctx, cmd)
		if err != nil {
			return err
		}
		if err := awsx.ImportKeyPair(ctx, awsx.NewEC2(cfg), kp); err != nil {
			return err
		}
		log.Infof("imported key pair %s", name)
	}

	fmt.Println(kp.PrivatePath)
	return nil
}

// keypairCommandBuilder constructs the cli.Command for "keypair".
func keypairCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "keypair",
		Usage:    "ssh key generation and EC2 import",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Aliases:   []string{"create"},
				Usage:     "generate an ed25519 keypair, print the private key path",
				UsageText: "awsctl keypair generate --name N [--dir D] [--import]",
				Flags: append(NewGlobalFlags("keypair"),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "key pair name"},
					&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "output directory"},
					&cli.BoolFlag{Name: "import", Usage: "import the public key into EC2", HideDefault: true},
				),
				Action: keypairGenerateAction,
			},
		},
	}
}
