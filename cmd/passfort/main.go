// Passfort is a password strength analysis and generation toolkit.
//
// It scores passwords on length, character diversity, entropy,
// common-password matches, predictable patterns, and character
// uniqueness, and generates cryptographically random passwords and
// passphrases.
//
// Usage:
//
//	# Analyze a single password
//	passfort analyze 'MyP@ssw0rd!'
//
//	# Analyze passwords from a file, one per line
//	passfort batch passwords.txt --format csv --output report.csv
//
//	# Generate passwords and passphrases
//	passfort generate --length 20 --count 5
//	passfort passphrase --words 5
//
//	# Interactive session
//	passfort interactive
//
//	# Run the HTTP API server
//	passfort serve --config /etc/passfort/config.yaml
//
//	# Inspect recorded analysis history
//	passfort history list
package main

func main() {
	Execute()
}
