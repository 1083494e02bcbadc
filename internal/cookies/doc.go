package cookies

// Package cookies collects browser cookies scoped to a domain so the
// conversion backend can fetch paywalled or private content as the user.
// Supported sources: a Netscape cookies.txt export and a Firefox profile's
// cookies.sqlite store.
