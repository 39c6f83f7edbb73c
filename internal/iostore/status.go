package iostore

import (
	"fmt"

	"github.com/langworld/langmatch/schema"
)

// PrintStoreStatus prints status information for one store.
func PrintStoreStatus(label string, status schema.StoreStatus) {
	fmt.Printf("%s Backend: %s\n", label, status.Backend)
	fmt.Printf("Available: %t\n", status.Available)
	if !status.Available {
		return
	}
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	fmt.Printf("Entries: %d\n", status.RunCount)
}
