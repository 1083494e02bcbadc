package model

// Package model defines domain data structures used across the app: the page
// classification record, status enums, and the wire types shared with the
// conversion backend. Structures are designed for direct binding in the UI
// and explicit state transitions.
