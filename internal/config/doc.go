// Package config provides configuration management for the Nijouzu API.
//
// Listener and runtime settings are loaded from environment variables using
// the env package. Service metadata and the cross-origin policy are fixed and
// filled in by Load.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
