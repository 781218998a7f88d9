// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Team representa uma linha do diretório de times
type Team struct {
	ID   int
	Name string
}

// TeamDirectory indexa os times pelo ID. Duplicados posteriores sobrescrevem os anteriores.
type TeamDirectory map[int]Team

func (d TeamDirectory) Get(id int) (Team, bool) {
	team, exists := d[id]
	return team, exists
}
