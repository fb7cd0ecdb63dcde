package api

var pageTemplates = []string{
	"home",
	"new_user",
	"new_schedule",
	"edit_schedule",
	"not_found",
}

var sharedTemplateFiles = []string{"base.html", "schedule_fields.html"}
