package main

import (
	"fmt"

	"github.com/Ok1nam/demo-edp-final/core/auth"
)

// hashPassword prints the bcrypt hash to paste in place of a plain demo password.
func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := auth.HashPassword(pwd)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
