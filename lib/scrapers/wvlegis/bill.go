package wvlegis

import (
	"regexp"
	"strings"
	"time"
)

type Chamber string

const (
	ChamberUpper Chamber = "upper"
	ChamberLower Chamber = "lower"
)

// FolderName is the chamber's directory name on the legislature's
// document server. The casing is theirs, not ours.
func (c Chamber) FolderName() string {
	if c == ChamberUpper {
		return "senate"
	}
	return "House"
}

// OriginCode is the single-letter origin marker used in listing URLs.
func (c Chamber) OriginCode() string {
	if c == ChamberUpper {
		return "s"
	}
	return "h"
}

type BillType string

const (
	BillTypeBill                 BillType = "bill"
	BillTypeResolution           BillType = "resolution"
	BillTypeConcurrentResolution BillType = "concurrent resolution"
	BillTypeJointResolution      BillType = "joint resolution"
)

var billTypes = map[string]BillType{
	"B":  BillTypeBill,
	"R":  BillTypeResolution,
	"CR": BillTypeConcurrentResolution,
	"JR": BillTypeJointResolution,
}

// BillTypeFromID classifies an identifier like "SB 1" or "HCR 12" by
// the letters following the chamber prefix.
func BillTypeFromID(billID string) BillType {
	fields := strings.Fields(billID)
	if len(fields) == 0 || len(fields[0]) < 2 {
		return BillTypeBill
	}
	if t, ok := billTypes[fields[0][1:]]; ok {
		return t
	}
	return BillTypeBill
}

type ActionType string

const (
	ActionReading1          ActionType = "bill:reading:1"
	ActionReading2          ActionType = "bill:reading:2"
	ActionReading3          ActionType = "bill:reading:3"
	ActionFiled             ActionType = "bill:filed"
	ActionIntroduced        ActionType = "bill:introduced"
	ActionPassed            ActionType = "bill:passed"
	ActionCommitteeReferred ActionType = "committee:referred"
	ActionCommitteePassed   ActionType = "committee:passed"
	ActionGovernorReceived  ActionType = "governor:received"
	ActionGovernorSigned    ActionType = "governor:signed"
	ActionOther             ActionType = "other"
)

var committeeReferral = regexp.MustCompile(`^To [A-Z]`)

func ClassifyAction(action string) ActionType {
	switch action {
	case "Read 1st time":
		return ActionReading1
	case "Read 2nd time":
		return ActionReading2
	case "Read 3rd time":
		return ActionReading3
	case "Filed for introduction":
		return ActionFiled
	}

	switch {
	case strings.HasPrefix(action, "To Governor") && !strings.Contains(action, "Journal"):
		return ActionGovernorReceived
	case committeeReferral.MatchString(action):
		return ActionCommitteeReferred
	case strings.HasPrefix(action, "Introduced in"):
		return ActionIntroduced
	case strings.HasPrefix(action, "Approved by Governor") && !strings.Contains(action, "Journal"):
		return ActionGovernorSigned
	case strings.HasPrefix(action, "Passed Senate"), strings.HasPrefix(action, "Passed House"):
		return ActionPassed
	case strings.HasPrefix(action, "Reported do pass"), strings.HasPrefix(action, "With amendment, do pass"):
		return ActionCommitteePassed
	}
	return ActionOther
}

type Action struct {
	Actor Chamber
	Text  string
	Date  time.Time
	Type  ActionType
}

type Bill struct {
	Session  string
	Chamber  Chamber
	ID       string
	Title    string
	Type     BillType
	Subjects []string
	Sponsors []string
	Actions  []Action
	Versions []Version
	Votes    []*Vote
	Sources  []string
}
