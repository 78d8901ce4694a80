// Package keys defines stored key pairs and the service and repository
// contracts around them.
package keys
