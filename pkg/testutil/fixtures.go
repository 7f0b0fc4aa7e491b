package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestDecisionID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestDecisionID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestUserID      = uuid.MustParse("00000000-0000-0000-0000-000000000010")
)

// TestApplicantID is a stable applicant identifier for fixtures.
const TestApplicantID = "applicant-0001"
