package client

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/client"
	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/importer"
)

type Handler struct {
	svc       *client.Service
	importSvc *importer.Service
}

func NewHandler(svc *client.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/importar", h.importCSV)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type clientRequest struct {
	Nome             string `json:"nome"`
	Contato          string `json:"contato"`
	NomeResponsavel  string `json:"nome_responsavel"`
	TelefoneWhatsapp bool   `json:"telefone_whatsapp"`
	Logradouro       string `json:"logradouro"`
	Quadra           string `json:"quadra"`
	Lote             string `json:"lote"`
	Bairro           string `json:"bairro"`
	CEP              string `json:"cep"`
	PontoReferencia  string `json:"ponto_referencia"`
}

func (req clientRequest) params() client.CreateParams {
	return client.CreateParams{
		Nome:             req.Nome,
		Contato:          req.Contato,
		NomeResponsavel:  req.NomeResponsavel,
		TelefoneWhatsapp: req.TelefoneWhatsapp,
		Logradouro:       req.Logradouro,
		Quadra:           req.Quadra,
		Lote:             req.Lote,
		Bairro:           req.Bairro,
		CEP:              req.CEP,
		PontoReferencia:  req.PontoReferencia,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponseList(clients))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	c, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	c, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Cliente removido com sucesso."})
}

type importResponse struct {
	Importados int              `json:"importados"`
	Clientes   []clientResponse `json:"clientes"`
}

// importCSV onboards clients in bulk from a spreadsheet export.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Falha ao processar o arquivo enviado.")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "O campo 'file' é obrigatório.")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Parse(file)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Não foi possível ler a planilha de clientes.")
		return
	}

	clients, err := h.svc.CreateBatch(r.Context(), params)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, importResponse{
		Importados: len(clients),
		Clientes:   toResponseList(clients),
	})
}
