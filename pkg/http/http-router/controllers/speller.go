package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	helper "github.com/lintang-b-s/spellcheck/pkg/http/http-router/router-helper"

	"github.com/lintang-b-s/spellcheck/pkg"
	"github.com/lintang-b-s/spellcheck/pkg/speller"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexWord = regexp.MustCompile("^[A-Za-z]+$")
)

type spellerAPI struct {
	spellerService SpellerService
	log            *zap.Logger
}

func New(spellerService SpellerService, log *zap.Logger) *spellerAPI {
	return &spellerAPI{
		spellerService: spellerService,
		log:            log,
	}

}

func (api *spellerAPI) Routes(group *helper.RouteGroup) {
	group.POST("/corpus", api.buildCorpus)
	group.GET("/suggest", api.suggest)
	group.GET("/check", api.check)
	group.GET("/autocorrect", api.autoCorrect)
	group.POST("/autocorrect-batch", api.autoCorrectBatch)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// buildCorpusRequest model info
//
//	@Description	request body for rebuilding the frequency model.
type buildCorpusRequest struct {
	Text string `json:"text" validate:"required"` // raw corpus text the model is built from.
}

// buildCorpus godoc
// @Summary		rebuild the frequency model from the corpus text in the request body.
// @Description	rebuild the frequency model from the corpus text in the request body. Replaces the previous model wholesale.
// @Tags			speller
// @ID build-corpus
// @Param			body	body	buildCorpusRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/corpus [post]
// @Success		201	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellerAPI) buildCorpus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request buildCorpusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.spellerService.BuildCorpus(request.Text); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": "frequency model rebuilt"},
		make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// suggestRequest model info
//
//	@Description	request body for spelling suggestions of one word.
type suggestRequest struct {
	Word string `json:"word" validate:"required,max=64"` // word to find ranked alternatives for.
}

// suggestResponse model info
//
//	@Description	response body with ranked suggestions.
type suggestResponse struct {
	Data []string `json:"data"` // alternatives sorted by descending corpus frequency.
}

// suggest godoc
// @Summary		suggest operation returns known words near the given word, ranked by corpus frequency.
// @Description	suggest operation returns known words near the given word, ranked by corpus frequency. A known word returns itself.
// @Tags			speller
// @ID suggest
// @Param			body	body	suggestRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/suggest [get]
// @Success		200	{object}	suggestResponse
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellerAPI) suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !regexWord.MatchString(request.Word) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: word must consist of roman letters only"))
		return
	}

	alternatives, err := api.spellerService.SuggestAlternatives(request.Word)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": alternatives},
		make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// checkRequest model info
//
//	@Description	request body for spell checking a text block.
type checkRequest struct {
	Text string `json:"text" validate:"required"` // text block to scan for unknown words.
}

// checkResponse model info
//
//	@Description	response body listing unknown words with their suggestions.
type checkResponse struct {
	Data []speller.SpellCheckItem `json:"data"` // one item per distinct unknown word, in first-occurrence order.
}

// check godoc
// @Summary		check operation scans a text block and pairs every distinct unknown word with ranked suggestions.
// @Description	check operation scans a text block and pairs every distinct unknown word with ranked suggestions.
// @Tags			speller
// @ID check
// @Param			body	body	checkRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/check [get]
// @Success		200	{object}	checkResponse
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellerAPI) check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request checkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	items, err := api.spellerService.Check(request.Text)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": items},
		make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// autoCorrect godoc
// @Summary		autocorrect operation rewrites a text block, replacing unknown words with their top suggestion.
// @Description	autocorrect operation rewrites a text block, replacing unknown words with their top suggestion and preserving initial capitalization.
// @Tags			speller
// @ID autocorrect
// @Param			body	body	checkRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocorrect [get]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellerAPI) autoCorrect(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request checkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	corrected, err := api.spellerService.AutoCorrect(request.Text)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": corrected},
		make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// autoCorrectBatchRequest model info
//
//	@Description	request body for auto-correcting several documents at once.
type autoCorrectBatchRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,max=100,dive,required"` // documents to correct, at most 100 per request.
}

// autoCorrectBatch godoc
// @Summary		autocorrect-batch operation corrects several documents concurrently against one model snapshot.
// @Description	autocorrect-batch operation corrects several documents concurrently against one model snapshot.
// @Tags			speller
// @ID autocorrect-batch
// @Param			body	body	autoCorrectBatchRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocorrect-batch [post]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellerAPI) autoCorrectBatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request autoCorrectBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	corrected, err := api.spellerService.AutoCorrectDocuments(request.Texts)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": corrected},
		make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// serviceErrorResponse maps core errors to status codes: a query against a
// never-built model is the caller's usage error, not a server fault.
func (api *spellerAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, pkg.ErrNotInitialized) {
		api.UnprocessableEntityResponse(w, r, err)
		return
	}
	api.ServerErrorResponse(w, r, err)
}

func (api *spellerAPI) validate(request interface{}) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
