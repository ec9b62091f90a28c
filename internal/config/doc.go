// Package config provides centralized configuration management for the car
// stock reporter. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern STOCK_* for namespacing:
//
//	STOCK_INPUT_PATH=inventory.csv
//	STOCK_INPUT_MODE=lenient
//	STOCK_REPORT_PATH=stock_report.txt
//	STOCK_LOGGING_LEVEL=debug
package config
