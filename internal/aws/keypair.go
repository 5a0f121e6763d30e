// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"golang.org/x/crypto/ssh"

	"github.com/awsctl/awsctl/internal/log"
)

// KeyPair holds the on-disk locations of generated key material.
type KeyPair struct {
	Name        string
	PrivatePath string
	PublicPath  string
}

// GenerateKeyPair writes a new ed25519 SSH key pair under dir: <name> with
// the private key (0600), <name>.pub with the authorized-keys form, and a
// .gitignore covering the private key so generated material never lands in
// revision control.
func GenerateKeyPair(name, dir string) (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(priv, name)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("failed to build public key: %w", err)
	}

	kp := &KeyPair{
		Name:        name,
		PrivatePath: filepath.Join(dir, name),
		PublicPath:  filepath.Join(dir, name+".pub"),
	}

	if err := os.WriteFile(kp.PrivatePath, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(kp.PublicPath, ssh.MarshalAuthorizedKey(sshPub), 0o644); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to write public key: %w", err)
	}

	if err := writeKeyIgnore(dir, name); err != nil {
		return nil, err
	}

	log.Debugf("key pair written: private=%s", kp.PrivatePath)
	return kp, nil
}

// ImportKeyPair registers the public key with EC2 under the key pair name.
func ImportKeyPair(ctx context.Context, api EC2API, kp *KeyPair) error {
	material, err := os.ReadFile(kp.PublicPath)
	if err != nil {
		return fmt.Errorf("failed to read public key: %w", err)
	}

	_, err = api.ImportKeyPair(ctx, &ec2v2.ImportKeyPairInput{
		KeyName:           awsv2.String(kp.Name),
		PublicKeyMaterial: material,
	})
	if err != nil {
		return fmt.Errorf("failed to import key pair %s: %w", kp.Name, err)
	}
	return nil
}

// writeKeyIgnore appends the private key name to dir/.gitignore, creating
// the file when needed. Already-ignored names are not repeated.
func writeKeyIgnore(dir, name string) error {
	path := filepath.Join(dir, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, line := range strings.Split(string(existing), "\n") {
		if line == name {
			return nil
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:mnd
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, name); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
