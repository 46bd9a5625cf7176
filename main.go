// =============================================================================
// Compute Sales - Main Entry Point
// =============================================================================
//
// USAGE:
//   compute-sales <catalog> <sales>  - Compute and report total revenue
//   compute-sales version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Loading, indexing, aggregation and reporting
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/compute-sales/cmd"
)

func main() {
	cmd.Execute()
}
