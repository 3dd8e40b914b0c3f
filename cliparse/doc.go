// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Values are resolved in this order:

 1. CLI flags
 2. Environment variables
 3. A .env file in the working directory (never overrides real env)
 4. Defaults

# Settings

	Flag             Env                  Default
	-p               PORT                 80
	-metrics-port    METRICS_PORT         0 (disabled)
	-log-level       LOG_LEVEL            info
	-option-a        OPTION_A             Cats
	-option-b        OPTION_B             Dogs
	-queue           QUEUE_BACKEND        redis
	-queue-key       QUEUE_KEY            votes
	-redis-host      REDIS_HOST           redis
	-redis-port      REDIS_PORT           6379
	-redis-db        REDIS_DB             0
	                 REDIS_PASSWORD       (none)
	-redis-timeout   REDIS_TIMEOUT        5 (seconds)
	-d               DATABASE_URL         (see below)
	                 COOKIE_MAX_AGE_DAYS  3650

REDIS_TIMEOUT bounds every queue append regardless of backend.

# SQL Queue Backends

QUEUE_BACKEND=postgres uses DATABASE_URL, or composes one from
POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD and
POSTGRES_DB. QUEUE_BACKEND=sqlite requires DATABASE_URL (a file path or
"file:" DSN).

# Validation

ParseFlags returns an error if:

  - an integer setting does not parse
  - an option label is blank, or both labels are equal
  - the queue timeout is not positive
  - the backend or log level is unknown
*/
package cliparse
