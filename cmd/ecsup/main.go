// Package main is the entry point for the ecsup CLI.
//
// ecsup provisions the AWS deployment infrastructure for a containerized
// web application: an ECR repository, the IAM execution role and CI
// pipeline user, an ECS Fargate cluster with a task definition and service,
// networking in the account's default VPC, and a CloudWatch log group.
// Every resource is reconciled check-then-create, so the tool can be rerun
// safely at any time.
//
// Commands: init, provision, version, completion.
//
// For detailed usage information, run:
//
//	ecsup --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/ecsup/cmd/ecsup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
