// Package config loads jsontint settings. Sources are layered, later ones
// winning: the embedded defaults, the user's config file, JSONTINT_*
// environment variables and finally explicit overrides from flags.
package config
