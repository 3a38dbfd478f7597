// Package all imports all supported release plugin implementations.
//
// Import this package for its side effects to register all ecosystems:
//
//	import (
//		"github.com/git-pkgs/releasers"
//		_ "github.com/git-pkgs/releasers/all"
//	)
//
//	// Now all ecosystems are available
//	ecosystems := releasers.SupportedEcosystems()
//	// ["pip"]
package all

import (
	_ "github.com/git-pkgs/releasers/internal/pip"
)
