package constants

import "time"

// Tokens expire a fixed hour after issuance; the server keeps no session table,
// so validity is decided purely by signature and expiry at verification time.
const AuthTokenDuration = 1 * time.Hour
