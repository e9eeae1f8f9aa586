package domain

// TestRow is a single test name with the number of log files found for it
type TestRow struct {
	TestName   string `json:"test_name"`
	FoundCount int    `json:"found_count"`
}

// TestList is the complete output structure for the list-tests command
type TestList struct {
	Rows  []TestRow `json:"rows"`
	Total int       `json:"total"`
}

// TestContents is the complete output structure for the cat-test command
type TestContents struct {
	TestName string
	Files    []TestContent
	Skipped  []SkippedFile
}
