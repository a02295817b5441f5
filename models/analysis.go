// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrEmptyResponse is returned by [AnalysisResponse.Report] when there is
// nothing to decode.
var ErrEmptyResponse = errors.New("empty analysis response")

// AnalysisFile is a file handed to the analysis backend.
//
// Content is owned by the caller and is read once into the multipart body
// before the request is sent, so the whole file is held in memory for the
// duration of the call. It is not validated on the client side.
type AnalysisFile struct {
	// Name is sent as the multipart filename.
	Name string
	// ContentType is the part's MIME type. Empty lets the HTTP client pick one.
	ContentType string
	// Content is read exactly once while the request is being sent.
	Content io.Reader
}

// AnalysisResponse is the body returned by POST /analyze, passed through
// unmodified. Its shape is defined by the server.
type AnalysisResponse json.RawMessage

// MarshalJSON returns the raw body so a response can be embedded in other
// JSON documents without re-encoding.
func (r AnalysisResponse) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of data.
func (r *AnalysisResponse) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

// Decode unmarshals the raw body into v.
func (r AnalysisResponse) Decode(v any) error {
	if len(r) == 0 {
		return ErrEmptyResponse
	}
	return json.Unmarshal(r, v)
}

// Report decodes the body into the typed view of the fraud analysis report.
// Fields the server does not send stay zero.
func (r AnalysisResponse) Report() (AnalysisReport, error) {
	var report AnalysisReport
	if err := r.Decode(&report); err != nil {
		return AnalysisReport{}, err
	}
	return report, nil
}

// AnalysisReport is the documented shape of a successful analysis.
type AnalysisReport struct {
	SuspiciousAccounts []SuspiciousAccount `json:"suspicious_accounts"`
	FraudRings         []FraudRing         `json:"fraud_rings"`
	GraphClusters      []GraphCluster      `json:"graph_clusters,omitempty"`
	AnomalyScores      []AnomalyScore      `json:"anomaly_scores,omitempty"`
	Explanations       []Explanation       `json:"explanations,omitempty"`
	Graph              *TransactionGraph   `json:"graph,omitempty"`
	Summary            ReportSummary       `json:"summary"`
}

// SuspiciousAccount is an account whose final risk score crossed the
// server's flagging threshold.
type SuspiciousAccount struct {
	AccountID        string             `json:"account_id"`
	SuspicionScore   float64            `json:"suspicion_score"`
	Confidence       float64            `json:"confidence"`
	DetectedPatterns []string           `json:"detected_patterns"`
	RiskBreakdown    map[string]float64 `json:"risk_breakdown,omitempty"`
}

// FraudRing is a group of accounts that share a detected pattern
// (cycle, fan_in, fan_out, layered_shell).
type FraudRing struct {
	RingID         string   `json:"ring_id"`
	MemberAccounts []string `json:"member_accounts"`
	PatternType    string   `json:"pattern_type"`
	RiskScore      float64  `json:"risk_score"`
}

// GraphCluster is a community found in the transaction graph.
type GraphCluster struct {
	ClusterID json.Number `json:"cluster_id"`
	Members   []string    `json:"members"`
}

// AnomalyScore is the per-account anomaly model output.
type AnomalyScore struct {
	AccountID string  `json:"account_id"`
	Score     float64 `json:"score"`
}

// Explanation is a human readable reason an account was flagged.
type Explanation struct {
	AccountID string `json:"account_id"`
	Text      string `json:"text"`
}

// TransactionGraph is the node/edge list the server built from the upload.
type TransactionGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphNode is a single account in [TransactionGraph].
type GraphNode struct {
	ID        string       `json:"id"`
	Community *json.Number `json:"community,omitempty"`
}

// GraphEdge is a money flow between two accounts.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Amount float64 `json:"amount"`
}

// ReportSummary holds the aggregate counters of a report.
type ReportSummary struct {
	TotalAccountsAnalyzed     int     `json:"total_accounts_analyzed"`
	SuspiciousAccountsFlagged int     `json:"suspicious_accounts_flagged"`
	FraudRingsDetected        int     `json:"fraud_rings_detected"`
	AvgRiskScore              float64 `json:"avg_risk_score"`
	ProcessingTimeSeconds     float64 `json:"processing_time_seconds"`
}
