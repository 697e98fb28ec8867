// Package content holds the statement the weekday exercise rewrites.
package content

// Text mentions several days of the week.
const Text = "The quarterly review moved from Thursday to Friday, so the team will prepare on Wednesday and present on Saturday."
