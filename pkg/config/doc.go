// Package config loads measurefs configuration.
//
// Settings are layered with koanf, later layers replacing earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/measurefs/config.toml, or the file
//     given with --config
//  3. a bundle-local .measurefs.toml or .measurefs.yaml
//  4. MEASUREFS_* environment variables
//  5. overrides passed by the caller, such as command-line flags
//
// Lists are replaced, not appended. An environment variable names its
// section with the first underscore, so MEASUREFS_COPY_CREATE_PARENTS sets
// copy.create_parents, and list values are comma separated.
package config
