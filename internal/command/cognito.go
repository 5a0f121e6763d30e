// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
)

// cognitoEnsureDomainAction attaches a domain to a user pool, succeeding
// when the domain is already attached there. A domain owned by a different
// pool surfaces as ErrDomainOwnedByOtherPool, which realMain maps to its
// own exit code.
func cognitoEnsureDomainAction(ctx context.Context, cmd *cli.Command) error {
	domain := cmd.String("domain")
	pool := cmd.String("pool")
	if domain == "" || pool == "" {
		log.Fatalf("--domain and --pool are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	return awsx.EnsureUserPoolDomain(ctx, awsx.NewCognito(cfg), domain, pool)
}

func cognitoDeleteDomainAction(ctx context.Context, cmd *cli.Command) error {
	domain := cmd.String("domain")
	pool := cmd.String("pool")
	if domain == "" || pool == "" {
		log.Fatalf("--domain and --pool are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	return awsx.DeleteUserPoolDomain(ctx, awsx.NewCognito(cfg), domain, pool)
}

// cognitoCommandBuilder constructs the cli.Command for "cognito".
func cognitoCommandBuilder(m meta.Meta) *cli.Command {
	domainFlags := append(NewGlobalFlags("cognito"),
		&cli.StringFlag{
			Name:  "domain",
			Usage: "user pool domain prefix",
		},
		&cli.StringFlag{
			Name:  "pool",
			Usage: "user pool id",
		},
	)

	return &cli.Command{
		Name:     "cognito",
		Usage:    "user pool domain management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ensure-domain",
				Usage:     "attach a domain to a user pool, idempotently",
				UsageText: "awsctl cognito ensure-domain --domain D --pool P",
				Flags:     domainFlags,
				Action:    cognitoEnsureDomainAction,
			},
			{
				Name:      "delete-domain",
				Usage:     "detach a domain from a user pool",
				UsageText: "awsctl cognito delete-domain --domain D --pool P",
				Flags:     domainFlags,
				Action:    cognitoDeleteDomainAction,
			},
		},
	}
}
