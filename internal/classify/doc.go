package classify

// Package classify decides whether a page URL names a downloadable story.
// Direct story URLs resolve locally; story part (chapter) URLs need one
// remote lookup to find the parent story id. Rules are evaluated in order
// and the first match wins.
