// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	summaryTopRings    = 5
	summaryTopAccounts = 5
	summaryTopHubs     = 3
)

// SummarizeRequest is the body of POST /summarize.
type SummarizeRequest struct {
	TotalAccounts      int     `json:"total_accounts"`
	FraudRings         int     `json:"fraud_rings"`
	SuspiciousAccounts int     `json:"suspicious_accounts"`
	AvgRiskScore       float64 `json:"avg_risk_score"`
	ProcessingTime     float64 `json:"processing_time"`
	RingsDetail        string  `json:"rings_detail"`
	TopFlaggedReasons  string  `json:"top_flagged_reasons"`
	GraphHubs          string  `json:"graph_hubs"`
}

// SummarizeResponse is the body returned by POST /summarize.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is the body of POST /chat. Context describes the analysis the
// conversation is about.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Context  ChatContext   `json:"context"`
}

// ChatContext carries the study figures the assistant answers from.
type ChatContext struct {
	TotalAccounts     int     `json:"total_accounts"`
	FraudRings        int     `json:"fraud_rings"`
	AvgRiskScore      float64 `json:"avg_risk_score"`
	TopFlaggedReasons string  `json:"top_flagged_reasons"`
	GraphHubs         string  `json:"graph_hubs"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Content string `json:"content"`
}

// NewSummarizeRequest condenses a report into the figures the summary
// endpoint expects.
func NewSummarizeRequest(report AnalysisReport) SummarizeRequest {
	return SummarizeRequest{
		TotalAccounts:      report.Summary.TotalAccountsAnalyzed,
		FraudRings:         report.Summary.FraudRingsDetected,
		SuspiciousAccounts: report.Summary.SuspiciousAccountsFlagged,
		AvgRiskScore:       report.Summary.AvgRiskScore,
		ProcessingTime:     report.Summary.ProcessingTimeSeconds,
		RingsDetail:        ringsDetail(report.FraudRings),
		TopFlaggedReasons:  topFlaggedReasons(report.SuspiciousAccounts),
		GraphHubs:          graphHubs(report.Graph),
	}
}

// NewChatContext builds the chat context for a report.
func NewChatContext(report AnalysisReport) ChatContext {
	return ChatContext{
		TotalAccounts:     report.Summary.TotalAccountsAnalyzed,
		FraudRings:        report.Summary.FraudRingsDetected,
		AvgRiskScore:      report.Summary.AvgRiskScore,
		TopFlaggedReasons: topFlaggedReasons(report.SuspiciousAccounts),
		GraphHubs:         graphHubs(report.Graph),
	}
}

func ringsDetail(rings []FraudRing) string {
	parts := make([]string, 0, min(len(rings), summaryTopRings))
	for i, ring := range rings {
		if i == summaryTopRings {
			break
		}
		parts = append(parts, fmt.Sprintf("%s (%s, %d accounts, risk %.1f)",
			ring.RingID, ring.PatternType, len(ring.MemberAccounts), ring.RiskScore))
	}
	return strings.Join(parts, "; ")
}

func topFlaggedReasons(accounts []SuspiciousAccount) string {
	parts := make([]string, 0, min(len(accounts), summaryTopAccounts))
	for i, acc := range accounts {
		if i == summaryTopAccounts {
			break
		}
		parts = append(parts, fmt.Sprintf("%s: %s (score %.1f)",
			acc.AccountID, strings.Join(acc.DetectedPatterns, ", "), acc.SuspicionScore))
	}
	return strings.Join(parts, "; ")
}

// graphHubs returns the accounts with the highest degree.
func graphHubs(graph *TransactionGraph) string {
	if graph == nil || len(graph.Edges) == 0 {
		return ""
	}

	degree := make(map[string]int)
	for _, e := range graph.Edges {
		degree[e.Source]++
		degree[e.Target]++
	}

	ids := make([]string, 0, len(degree))
	for id := range degree {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if degree[ids[i]] != degree[ids[j]] {
			return degree[ids[i]] > degree[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > summaryTopHubs {
		ids = ids[:summaryTopHubs]
	}
	for i, id := range ids {
		ids[i] = fmt.Sprintf("%s (%d links)", id, degree[id])
	}
	return strings.Join(ids, ", ")
}
