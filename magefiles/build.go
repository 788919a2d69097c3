//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles every package in the module.
func (Build) Lib() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the catalog inspection tool into bin/.
func (Build) CLI() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/tessera", "./cmd/tessera"), withStream()); err != nil {
		return err
	}
	return nil
}
