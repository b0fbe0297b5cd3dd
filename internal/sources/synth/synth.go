// Package synth generates clearly tagged placeholder payloads for officials
// whose every real source failed, plus the static position/salary reference
// table shared with the payroll estimator. Output is deterministic per
// official so repeated runs produce stable placeholder data.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"

	"github.com/google/uuid"
)

// DefaultSalary is used when a position matches nothing in the table.
const DefaultSalary = 3500.00

// positionSalaries is the canonical position → reference salary table, in
// Brazilian Real. Labels are free text upstream; lookups run
// case-insensitive exact match first, then substring match.
var positionSalaries = []struct {
	Position string
	Salary   float64
}{
	{"Secretário Parlamentar", 8200.00},
	{"Assessor Parlamentar", 6100.00},
	{"Chefe de Gabinete", 12800.00},
	{"Assistente Técnico", 4300.00},
	{"Auxiliar Administrativo", 2900.00},
	{"Motorista", 3200.00},
	{"Recepcionista", 2600.00},
	{"Assessor de Imprensa", 5400.00},
}

// SalaryFor resolves a free-text position label to a reference salary:
// case-insensitive exact match, then substring match against table keys,
// then DefaultSalary.
func SalaryFor(position string) float64 {
	needle := strings.ToLower(strings.TrimSpace(position))
	if needle == "" {
		return DefaultSalary
	}

	for _, entry := range positionSalaries {
		if strings.ToLower(entry.Position) == needle {
			return entry.Salary
		}
	}

	for _, entry := range positionSalaries {
		key := strings.ToLower(entry.Position)
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return entry.Salary
		}
	}

	return DefaultSalary
}

// Positions returns the canonical position labels in table order.
func Positions() []string {
	names := make([]string, 0, len(positionSalaries))
	for _, entry := range positionSalaries {
		names = append(names, entry.Position)
	}
	return names
}

// namePool feeds synthetic staff rosters. The names are common Brazilian
// full names, not tied to any real person.
var namePool = []string{
	"Ana Beatriz Souza", "Carlos Eduardo Lima", "Fernanda Oliveira Santos",
	"João Pedro Almeida", "Juliana Costa Ribeiro", "Lucas Martins Ferreira",
	"Mariana Rocha Cardoso", "Paulo Henrique Barbosa", "Rafael Gomes Pereira",
	"Tatiana Silva Nunes", "Bruno Carvalho Dias", "Camila Araújo Mendes",
	"Diego Fernandes Moraes", "Larissa Teixeira Campos", "Rodrigo Azevedo Pinto",
	"Patrícia Monteiro Reis", "Gustavo Correia Lopes", "Vanessa Duarte Farias",
	"André Luiz Cavalcanti", "Renata Borges Machado", "Thiago Nascimento Cruz",
	"Isabela Freitas Ramos", "Marcelo Vieira Castro", "Aline Batista Moura",
}

// expenseCategories feeds synthetic expense placeholders. Labels mimic the
// chamber's free-text expense taxonomy.
var expenseCategories = []struct {
	Label string
	Min   float64
	Max   float64
}{
	{"COMBUSTÍVEIS E LUBRIFICANTES", 800, 6000},
	{"PASSAGEM AÉREA", 1500, 18000},
	{"DIVULGAÇÃO DA ATIVIDADE PARLAMENTAR", 2000, 25000},
	{"MANUTENÇÃO DE ESCRITÓRIO DE APOIO À ATIVIDADE PARLAMENTAR", 1000, 12000},
	{"TELEFONIA", 200, 1800},
	{"SERVIÇOS POSTAIS", 100, 900},
	{"CONSULTORIAS, PESQUISAS E TRABALHOS TÉCNICOS", 3000, 30000},
	{"LOCAÇÃO OU FRETAMENTO DE VEÍCULOS AUTOMOTORES", 1200, 10000},
}

// staffBand is the plausible headcount range for a branch's office.
type staffBand struct {
	min, max int
}

func bandFor(branch officials.Branch) staffBand {
	switch branch {
	case officials.BranchFederalDeputy:
		return staffBand{8, 17}
	case officials.BranchFederalSenator:
		return staffBand{10, 24}
	case officials.BranchStateDeputy:
		return staffBand{6, 14}
	default:
		return staffBand{3, 9}
	}
}

// rngFor derives a stable pseudo-random source from the official's id, so
// synthesis is deterministic per official.
func rngFor(id uuid.UUID, salt string) *rand.Rand {
	var seed int64
	for _, b := range id[:] {
		seed = seed*31 + int64(b)
	}
	for _, b := range []byte(salt) {
		seed = seed*31 + int64(b)
	}
	return rand.New(rand.NewSource(seed))
}

// Staff builds a synthetic office roster for the official, tagged
// "synthesized" so it can never be mistaken for real records.
func Staff(off officials.Official) []sources.StaffMember {
	rng := rngFor(off.ID, "staff")
	band := bandFor(off.Branch)
	count := band.min + rng.Intn(band.max-band.min+1)

	positions := Positions()
	members := make([]sources.StaffMember, 0, count)
	for i := 0; i < count; i++ {
		position := positions[rng.Intn(len(positions))]
		members = append(members, sources.StaffMember{
			Name:            namePool[rng.Intn(len(namePool))],
			Position:        position,
			EstimatedSalary: SalaryFor(position),
			HireDate:        "unknown",
			Status:          "active",
			Source:          sources.ProvenanceSynthesized,
		})
	}

	return members
}

// Expenses builds synthetic expense line items for the official and year,
// one per reference category, tagged through the orchestrator's provenance.
func Expenses(off officials.Official, year int) []sources.ExpenseLineItem {
	rng := rngFor(off.ID, fmt.Sprintf("expenses-%d", year))

	items := make([]sources.ExpenseLineItem, 0, len(expenseCategories))
	for _, category := range expenseCategories {
		value := category.Min + rng.Float64()*(category.Max-category.Min)
		month := time.Month(1 + rng.Intn(12))
		items = append(items, sources.ExpenseLineItem{
			Date:     time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			Category: category.Label,
			NetValue: float64(int(value*100)) / 100,
		})
	}

	return items
}
