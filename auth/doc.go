// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves the Google service account key used to reach the sheet.

# Credential Sources

Two sources are supported, chosen by presence of the inline payload:

	creds, err := auth.LoadCredentials(os.Getenv("GOOGLE_CREDENTIALS"), "credentials.json")

  - Inline JSON (deployment): the full key in the GOOGLE_CREDENTIALS env var
  - Key file (local): credentials.json next to the binary, or a configured path

The inline payload always wins; the file is not read when it is set.

# Validation

The payload must be a service_account key with client_email and private_key.
Failures wrap ErrMissingCredentials or ErrInvalidCredentials and are classified
as apperror.KindAuth.
*/
package auth
