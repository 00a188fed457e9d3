package render

// Metric icons as SVG path elements in a 16x16 viewBox, matching the
// Octicons silhouettes for each stat.

const commitIcon = `<path d="M8 1a7 7 0 1 0 0 14A7 7 0 0 0 8 1zm0 2.5a4.5 4.5 0 0 1 ` +
	`4.473 4H14.5a.5.5 0 0 1 0 1h-2.027A4.5 4.5 0 0 1 8 12.5a4.5 4.5 ` +
	`0 0 1-4.473-4H1.5a.5.5 0 0 1 0-1h2.027A4.5 4.5 0 0 1 8 3.5zm0 ` +
	`1.5a3 3 0 1 0 0 6 3 3 0 0 0 0-6z"/>`

const starIcon = `<path d="M8 .25a.75.75 0 0 1 .673.418l1.882 3.815 4.21.612a.75.75 ` +
	`0 0 1 .416 1.279l-3.046 2.97.719 4.192a.75.75 0 0 1-1.088.791L8 ` +
	`12.347l-3.766 1.98a.75.75 0 0 1-1.088-.79l.72-4.194L.818 ` +
	`6.374a.75.75 0 0 1 .416-1.28l4.21-.611L7.327.668A.75.75 0 0 1 8 .25z"/>`

const prIcon = `<path d="M5 3.254V3.25v.005a.75.75 0 1 1 0-.005zm6.5 8a.75.75 0 1 ` +
	`1 0 1.5.75.75 0 0 1 0-1.5zM5 12.75a.75.75 0 1 1 0 1.5.75.75 0 0 ` +
	`1 0-1.5zm-1.5.75a1.5 1.5 0 1 0 1.5 1.5v-8.5a1.5 1.5 0 1 0-1.5-1.5v8.5a1.5 ` +
	`1.5 0 0 0 0 0zm8.5-2.5a1.5 1.5 0 0 0-1.5 1.5 1.5 1.5 0 1 0 3 0v-3.133l.025-` +
	`.05A3.252 3.252 0 0 0 11 5.25V3.5h1.25a.75.75 0 0 0 .53-1.28l-2-2a.75.75 0 ` +
	`0 0-1.06 0l-2 2A.75.75 0 0 0 8.25 3.5H9.5v1.75a1.75 1.75 0 0 0 1.75 1.75h.244a1.75 ` +
	`1.75 0 0 1 1.006.319V11a1.5 1.5 0 0 0-1.5-1.5z"/>`

const issueIcon = `<path d="M8 9.5a1.5 1.5 0 1 0 0-3 1.5 1.5 0 0 0 0 3z"/>` +
	`<path d="M8 0a8 8 0 1 1 0 16A8 8 0 0 1 8 0zm0 1.5a6.5 6.5 0 1 0 0 ` +
	`13 6.5 6.5 0 0 0 0-13z"/>`

const repoIcon = `<path d="M2 2.5A2.5 2.5 0 0 1 4.5 0h8.75a.75.75 0 0 1 .75.75v12.5a.75.75 ` +
	`0 0 1-.75.75h-2.5a.75.75 0 0 1 0-1.5h1.75v-2h-8a1 1 0 0 0-.714 ` +
	`1.7.75.75 0 0 1-1.072 1.05A2.495 2.495 0 0 1 2 11.5zm10.5-1h-8a1 ` +
	`1 0 0 0-1 1v6.708A2.486 2.486 0 0 1 4.5 9h8zM5 12.25a.25.25 0 0 ` +
	`1 .25-.25h3.5a.25.25 0 0 1 .25.25v3.25a.25.25 0 0 1-.4.2l-1.45-` +
	`1.087a.25.25 0 0 0-.3 0L5.4 15.7a.25.25 0 0 1-.4-.2z"/>`

var metricIcons = map[string]string{
	"commits": commitIcon,
	"stars":   starIcon,
	"prs":     prIcon,
	"issues":  issueIcon,
	"repos":   repoIcon,
}

var metricLabels = map[string]string{
	"commits": "Commits",
	"stars":   "Stars",
	"prs":     "PRs",
	"issues":  "Issues",
	"repos":   "Repos",
}

// metricColors maps each metric to a theme token name.
var metricColors = map[string]string{
	"commits": "synapse_cyan",
	"stars":   "axon_amber",
	"prs":     "dendrite_violet",
	"issues":  "synapse_cyan",
	"repos":   "dendrite_violet",
}
