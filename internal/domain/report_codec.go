package domain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// legacyReport é o formato sem versão gravado antes da tipagem dos relatórios
type legacyReport struct {
	ScoreGeral    int      `json:"scoreGeral"`
	ScoreGBP      int      `json:"scoreGBP"`
	ScoreSite     int      `json:"scoreSite"`
	ScoreRedes    int      `json:"scoreRedes"`
	Problemas     []string `json:"problemas"`
	Oportunidades []string `json:"oportunidades"`
	Recomendacoes []string `json:"recomendacoes"`
}

type versionProbe struct {
	SchemaVersion int `json:"schema_version"`
}

func EncodeReport(report DigitalPresenceReport) ([]byte, error) {
	if report.SchemaVersion == 0 {
		report.SchemaVersion = ReportSchemaVersion
	}
	return json.Marshal(report)
}

// DecodeReport lê um relatório persistido em qualquer versão conhecida
func DecodeReport(data []byte) (DigitalPresenceReport, error) {
	var report DigitalPresenceReport
	if len(data) == 0 {
		return report, nil
	}

	var probe versionProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return report, fmt.Errorf("relatório inválido: %w", err)
	}

	switch {
	case probe.SchemaVersion <= 1:
		var legacy legacyReport
		if err := json.Unmarshal(data, &legacy); err != nil {
			return report, fmt.Errorf("relatório legado inválido: %w", err)
		}
		return upgradeLegacyReport(legacy), nil
	case probe.SchemaVersion == ReportSchemaVersion:
		if err := json.Unmarshal(data, &report); err != nil {
			return report, fmt.Errorf("relatório inválido: %w", err)
		}
		return report, nil
	default:
		return report, fmt.Errorf("versão de relatório não suportada: %d", probe.SchemaVersion)
	}
}

func upgradeLegacyReport(legacy legacyReport) DigitalPresenceReport {
	report := DigitalPresenceReport{
		SchemaVersion: ReportSchemaVersion,
		GBP:           PartialScore{Axis: AxisGBP, Value: legacy.ScoreGBP, Findings: []Finding{}},
		Site:          PartialScore{Axis: AxisSite, Value: legacy.ScoreSite, Findings: []Finding{}},
		Social:        PartialScore{Axis: AxisSocial, Value: legacy.ScoreRedes, Findings: []Finding{}},
		ScoreGeral:    legacy.ScoreGeral,
		Problemas:     make([]Finding, 0, len(legacy.Problemas)),
		Oportunidades: make([]Finding, 0, len(legacy.Oportunidades)),
		Recomendacoes: legacy.Recomendacoes,
	}

	for _, p := range legacy.Problemas {
		report.Problemas = append(report.Problemas, Finding{Titulo: p, Severidade: SeverityProblem})
	}
	for _, o := range legacy.Oportunidades {
		report.Oportunidades = append(report.Oportunidades, Finding{Titulo: o, Severidade: SeverityOpportunity})
	}
	if report.Recomendacoes == nil {
		report.Recomendacoes = []string{}
	}

	return report
}

func EncodeProposal(proposal PricingProposal) ([]byte, error) {
	if proposal.SchemaVersion == 0 {
		proposal.SchemaVersion = ReportSchemaVersion
	}
	return json.Marshal(proposal)
}

// DecodeProposal lê uma proposta persistida; propostas legadas têm o mesmo formato sem versão
func DecodeProposal(data []byte) (PricingProposal, error) {
	var proposal PricingProposal
	if len(data) == 0 {
		return proposal, nil
	}

	if err := json.Unmarshal(data, &proposal); err != nil {
		return proposal, fmt.Errorf("proposta inválida: %w", err)
	}

	if proposal.SchemaVersion > ReportSchemaVersion {
		return proposal, fmt.Errorf("versão de proposta não suportada: %d", proposal.SchemaVersion)
	}
	proposal.SchemaVersion = ReportSchemaVersion

	return proposal, nil
}
