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
)

func snsEnsureTopicAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		log.Fatalf("--name is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	client := awsx.NewSNS(cfg)

	arn, err := awsx.EnsureTopic(ctx, client, name)
	if err != nil {
		return err
	}

	if endpoint := cmd.String("endpoint"); endpoint != "" {
		if _, err := awsx.Subscribe(ctx, client, arn, cmd.String("protocol"), endpoint); err != nil {
			return err
		}
	}

	fmt.Println(arn)
	return nil
}

func snsPublishAction(ctx context.Context, cmd *cli.Command) error {
	topic := cmd.String("topic-arn")
	message := cmd.String("message")
	if topic == "" || message == "" {
		log.Fatalf("--topic-arn and --message are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	id, err := awsx.Publish(ctx, awsx.NewSNS(cfg), topic, cmd.String("subject"), message)
	if err != nil {
		return err
	}
	log.Debugf("published message %s", id)
	return nil
}

// snsCommandBuilder constructs the cli.Command for "sns".
func snsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "sns",
		Usage:    "topic and notification management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ensure-topic",
				Usage:     "create the topic when absent, print the topic ARN",
				UsageText: "awsctl sns ensure-topic --name N [--protocol P --endpoint E]",
				Flags: append(NewGlobalFlags("sns"),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "topic name"},
					&cli.StringFlag{Name: "protocol", Usage: "subscription protocol", Value: "email"},
					&cli.StringFlag{Name: "endpoint", Usage: "subscription endpoint"},
				),
				Action: snsEnsureTopicAction,
			},
			{
				Name:      "publish",
				Usage:     "publish a message to a topic",
				UsageText: "awsctl sns publish --topic-arn ARN --message M [--subject S]",
				Flags: append(NewGlobalFlags("sns"),
					&cli.StringFlag{Name: "topic-arn", Usage: "topic ARN"},
					&cli.StringFlag{Name: "subject", Usage: "message subject"},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "message body"},
				),
				Action: snsPublishAction,
			},
		},
	}
}
