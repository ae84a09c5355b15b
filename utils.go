package main

import "os"

// stringInList checks if a string exists in a list of strings.
func stringInList(target string, list []string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

// resolveSender returns the explicit sender ID if set, else the USER
// environment variable, else the hostname.
func resolveSender(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	host, err := os.Hostname()
	if err != nil {
		return "smsblast"
	}
	return host
}
