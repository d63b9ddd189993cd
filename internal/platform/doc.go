// Package platform contains filesystem glue: artifact and key file checks,
// artifact kind detection from file names, and size formatting.
package platform
