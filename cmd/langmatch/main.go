// main is the entry point for the langmatch CLI.
package main

import (
	"os"

	"github.com/langworld/langmatch/cmd"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/internal/iostore"
)

func main() {
	// The global manager is populated lazily by sharedSetup via InitStores.
	cmd.SetStoreManager(iostore.Manager)

	err := cmd.Execute()
	iostore.CloseStores()
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
