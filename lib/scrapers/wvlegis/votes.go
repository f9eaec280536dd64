package wvlegis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Vote is the structured tally of one roll-call vote record.
type Vote struct {
	Chamber    Chamber
	Date       time.Time
	Motion     string
	Passed     bool
	YesCount   int
	NoCount    int
	OtherCount int
	YesVotes   []string
	NoVotes    []string
	OtherVotes []string
	Source     string
}

type VoteCountMismatch struct {
	Category string
	Expected int
	Actual   int
}

// VoteParseError reports that the member names listed under a vote's
// category blocks don't add up to the counts in its tally summary.
// This is a data-integrity failure of the source document (or of the
// text extraction); the caller decides whether to skip the vote or
// abort the bill.
type VoteParseError struct {
	Motion     string
	Mismatches []VoteCountMismatch
}

func (e *VoteParseError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = fmt.Sprintf("%s: expected %d names, found %d", m.Category, m.Expected, m.Actual)
	}
	return fmt.Sprintf("vote tally mismatch for %q: %s", e.Motion, strings.Join(parts, ", "))
}

var (
	voteDateSuffix  = regexp.MustCompile(`(\d+)/(\d+)/(\d{4})$`)
	voteTallyLine   = regexp.MustCompile(`^\s+YEAS: (\d+)\s+NAYS: (\d+)\s+NOT VOTING: (\d+)`)
	voteExcused     = regexp.MustCompile(`EXCUSED: (\d+)`)
	voteCategory    = regexp.MustCompile(`^(YEAS|NAYS|NOT VOTING|PAIRED|EXCUSED):\s+(\d+)\s*$`)
	votePairedEntry = regexp.MustCompile(`([^\(]+)\((YEA|NAY)\)`)
)

var voteCategories = map[string]string{
	"YEAS":       "yes",
	"NAYS":       "no",
	"NOT VOTING": "other",
	"EXCUSED":    "other",
	"PAIRED":     "paired",
}

// names within a line are separated by runs of at least three spaces
const voteNameDelimiter = "   "

// ParseVoteText converts the text extracted from a roll-call document
// into a structured Vote. It is a single pass over the lines: a tally
// summary line fixes the counts, outcome and motion (the motion is the
// line two back, carried in a two-line window), category header lines
// switch which member list subsequent name lines feed, and paired
// lines route each "Name (YEA)" fragment to its side.
//
// The vote's Chamber and Source are left for the caller to fill in;
// the document text doesn't carry them.
func ParseVoteText(text string) (*Vote, error) {
	var (
		vote        Vote
		currentType string
		sawTally    bool
		prev1       string // previous line
		prev2       string // the line before that
	)

	votes := map[string][]string{}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t\r")
		window := prev2
		prev2 = prev1
		prev1 = line

		if m := voteDateSuffix.FindString(line); m != "" {
			date, err := time.Parse("1/2/2006", m)
			if err == nil {
				vote.Date = date
			}
			continue
		}

		if m := voteTallyLine.FindStringSubmatch(line); m != nil {
			vote.Motion = strings.TrimSpace(window)
			vote.YesCount, _ = strconv.Atoi(m[1])
			vote.NoCount, _ = strconv.Atoi(m[2])
			vote.OtherCount, _ = strconv.Atoi(m[3])

			if excused := voteExcused.FindStringSubmatch(line); excused != nil {
				n, _ := strconv.Atoi(excused[1])
				vote.OtherCount += n
			}

			vote.Passed = strings.HasSuffix(line, "ADOPTED") ||
				strings.HasSuffix(line, "PASSED")
			sawTally = true
			continue
		}

		if m := voteCategory.FindStringSubmatch(line); m != nil {
			currentType = voteCategories[m[1]]
			continue
		}

		if currentType == "paired" {
			for _, part := range strings.Split(line, voteNameDelimiter) {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				m := votePairedEntry.FindStringSubmatch(part)
				if m == nil {
					continue
				}
				name := strings.TrimSpace(m[1])
				switch m[2] {
				case "YEA":
					votes["yes"] = append(votes["yes"], name)
				case "NAY":
					votes["no"] = append(votes["no"], name)
				}
			}
			continue
		}

		if currentType != "" {
			for _, name := range strings.Split(line, voteNameDelimiter) {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				votes[currentType] = append(votes[currentType], name)
			}
		}
	}

	if !sawTally {
		return nil, fmt.Errorf("no tally summary line found in vote text")
	}

	vote.YesVotes = votes["yes"]
	vote.NoVotes = votes["no"]
	vote.OtherVotes = votes["other"]

	var mismatches []VoteCountMismatch
	check := func(category string, expected int, names []string) {
		if len(names) != expected {
			mismatches = append(mismatches, VoteCountMismatch{
				Category: category,
				Expected: expected,
				Actual:   len(names),
			})
		}
	}
	check("yes", vote.YesCount, vote.YesVotes)
	check("no", vote.NoCount, vote.NoVotes)
	check("other", vote.OtherCount, vote.OtherVotes)
	if mismatches != nil {
		return nil, &VoteParseError{Motion: vote.Motion, Mismatches: mismatches}
	}

	return &vote, nil
}
