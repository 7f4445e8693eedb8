// Package templates holds the dashboard page. The page is a hand-written
// templ.Component: all dynamic content arrives through the datastar SSE
// endpoints, so the page itself is static chrome.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"sales-dashboard/internal/models"
)

func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardPage())
		return err
	})
}

func dashboardPage() string {
	monthOptions := `<option value="0">Todos</option>`
	for i, name := range models.MonthNames {
		monthOptions += `<option value="` + strconv.Itoa(i+1) + `">` + name + `</option>`
	}

	return `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Dashboard de Análise de Vendas</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6fa; }
header { background: #1f77b4; color: #fff; padding: 1rem 2rem; }
main { padding: 1rem 2rem; }
.filters { display: flex; gap: 1rem; align-items: end; margin-bottom: 1.5rem; }
.filters label { display: block; font-size: .8rem; color: #555; }
.panel { background: #fff; border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.modern-table { width: 100%; border-collapse: collapse; }
.modern-table th, .modern-table td { text-align: left; padding: .5rem .75rem; border-bottom: 1px solid #eee; }
</style>
</head>
<body data-signals="{summary: {}, abcData: [], dailyData: [], monthlyData: []}"
      data-on-load="@get('/sse/refresh-all')">
<header><h1>Dashboard de Análise de Vendas</h1></header>
<main>
<div class="filters panel">
<div><label>Anos</label><input id="years" type="text" placeholder="2023,2024"></div>
<div><label>Mês</label><select id="month">` + monthOptions + `</select></div>
<div><label>Excluir Clientes</label><input id="exclude" type="text" placeholder="Cliente A,Cliente B"></div>
<button data-on-click="@get('/sse/refresh-all?years='+document.getElementById('years').value+'&month='+document.getElementById('month').value+'&exclude='+encodeURIComponent(document.getElementById('exclude').value))">Aplicar</button>
</div>
<div class="panel"><h2>Resumo</h2><div id="summary-content" data-text="JSON.stringify($summary)"></div></div>
<div class="panel"><h2>Curva ABC</h2><div id="abc-content">Carregando...</div></div>
<div class="panel"><h2>Produtos Comprados Juntos</h2><div id="pairs-content">Carregando...</div></div>
<div class="panel"><h2>Perfil do Consumidor</h2><div id="customers-content">Carregando...</div></div>
<div class="panel"><h2>Evolução das Vendas</h2><div id="sales-content">Carregando...</div></div>
</main>
</body>
</html>`
}
