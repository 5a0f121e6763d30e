// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/config"
)

// NewGlobalFlags returns the flags every AWS-facing command shares. The ns
// argument namespaces YAML config lookups to the command.
func NewGlobalFlags(ns string) []cli.Flag {
	return []cli.Flag{
		NewProfileFlag(ns),
		NewRegionFlag(ns),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}
}

// NewProfileFlag constructs the "profile" flag, sourced from the env and the
// config file, both namespaced and global.
func NewProfileFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "AWS shared config profile. Defaults to the AWS_PROFILE chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_PROFILE"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NewRegionFlag constructs the "region" flag, sourced from the env and the
// config file, both namespaced and global.
func NewRegionFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "region",
		Aliases: []string{"r"},
		Usage:   "AWS region. Defaults to the env/profile/metadata chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_REGION"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
