package analyzer

import "github.com/humai-verify/screener/internal/domain"

// Canned alert and guidance texts per factor. These feed the public API, so
// they stay in Portuguese like the rest of the outward contract.

type factorTexts struct {
	AlertPrefix string // prepended to the evidence snippet in alerts
	RecTitle    string
	RecBody     string
}

var factorGuidance = map[domain.Factor]factorTexts{
	domain.FactorTitle: {
		AlertPrefix: "Título com promessas suspeitas",
		RecTitle:    "Desconfie de títulos chamativos",
		RecBody: "Anúncios legítimos descrevem a função e a área de trabalho. " +
			"Promessas de dinheiro fácil, ganhos altos sem qualificação ou " +
			"urgência artificial são táticas comuns de aliciamento.",
	},
	domain.FactorCompany: {
		AlertPrefix: "Empresa não identificada ou suspeita",
		RecTitle:    "Verifique a empresa antes de responder",
		RecBody: "Procure o nome da empresa em registos oficiais, redes sociais " +
			"e notícias. Empresas que se apresentam como anónimas ou " +
			"confidenciais impedem qualquer verificação.",
	},
	domain.FactorDescription: {
		AlertPrefix: "Descrição da vaga com sinais de risco",
		RecTitle:    "Leia a descrição com atenção",
		RecBody: "Pedidos de pagamento adiantado, taxas de inscrição, promessas " +
			"de viagem ou passaporte tratado e exigências de sigilo são " +
			"sinais fortes de fraude ou aliciamento.",
	},
	domain.FactorRequirements: {
		AlertPrefix: "Requisitos vagos ou inadequados",
		RecTitle:    "Compare os requisitos com a função",
		RecBody: "Vagas reais pedem qualificações relacionadas ao trabalho. " +
			"Requisitos como apenas boa aparência, idade limite baixa ou " +
			"disponibilidade total para viajar não são requisitos " +
			"profissionais normais.",
	},
	domain.FactorCompensation: {
		AlertPrefix: "Remuneração fora do padrão do mercado",
		RecTitle:    "Desconfie de salários irreais",
		RecBody: "Compare o valor oferecido com o praticado no mercado para a " +
			"mesma função. Salários muito acima do normal para trabalho sem " +
			"qualificação são usados como isca.",
	},
	domain.FactorContact: {
		AlertPrefix: "Contato suspeito",
		RecTitle:    "Exija canais de contato verificáveis",
		RecBody: "Empresas legítimas oferecem email institucional, telefone fixo " +
			"ou endereço físico. Recrutamento feito exclusivamente por " +
			"WhatsApp ou Telegram impede identificar quem está a contratar.",
	},
	domain.FactorPlatform: {
		AlertPrefix: "Plataforma de divulgação informal",
		RecTitle:    "Prefira canais formais de recrutamento",
		RecBody: "Vagas divulgadas apenas em grupos de WhatsApp, Telegram ou " +
			"redes sociais, sem presença num portal de empregos ou site da " +
			"empresa, merecem verificação redobrada.",
	},
	domain.FactorEmail: {
		AlertPrefix: "Email de contato suspeito",
		RecTitle:    "Verifique o domínio do email",
		RecBody: "Empresas estabelecidas usam email com domínio próprio. " +
			"Endereços gratuitos ou cheios de números em nome de uma grande " +
			"empresa são um sinal de alerta.",
	},
	domain.FactorURL: {
		AlertPrefix: "Link da vaga suspeito",
		RecTitle:    "Não clique em links encurtados ou estranhos",
		RecBody: "Links encurtados, domínios recém-criados ou endereços com " +
			"promessas no próprio nome escondem o destino real. Aceda ao " +
			"site da empresa digitando o endereço diretamente.",
	},
}

// genericRecommendations is appended for low and medium risk results that
// produced no factor-specific guidance, so the response is never empty of
// orientation.
var genericRecommendations = []domain.Recommendation{
	{
		Title: "Pesquise a empresa de forma independente",
		Explanation: "Antes de partilhar dados pessoais ou documentos, confirme " +
			"que a empresa existe: site oficial, registo comercial, presença " +
			"em portais de emprego conhecidos.",
	},
	{
		Title: "Nunca pague para ser contratado",
		Explanation: "Nenhum empregador legítimo cobra taxa de inscrição, " +
			"material, formação obrigatória ou tratamento de documentos " +
			"antes de contratar.",
	},
	{
		Title: "Proteja os seus documentos",
		Explanation: "Não entregue passaporte, bilhete de identidade ou " +
			"documentos originais a recrutadores. Reter documentos é uma " +
			"tática usada em esquemas de exploração.",
	},
}

// Trust-derived guidance shown when the posting came from a recognized
// domain.
const (
	jobPortalCautionTitle = "Publicado num portal de empregos"
	jobPortalCautionBody  = "Portais de emprego conhecidos são um bom sinal, mas " +
		"qualquer pessoa pode publicar neles. Verifique a empresa " +
		"anunciante da mesma forma."
	trustedSourceTitle = "Fonte reconhecida"
	trustedSourceBody  = "O anúncio vem de um domínio reconhecido, o que reduz o " +
		"risco. Mesmo assim confirme os detalhes pelos canais oficiais."
)
