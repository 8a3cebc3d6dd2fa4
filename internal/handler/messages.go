package handlers

const (
	msgStart         = "Welcome to ImageStoreBot! You can upload your photos, and I will keep them safe."
	msgHelp          = "You can upload photos to store them securely. Use /get <tag> to retrieve photos."
	msgUploaded      = "Photo uploaded! Please provide a tag using /tag <your_tag>."
	msgTagged        = "Tag '%s' added to your most recent photo!"
	msgNotFound      = "No approved photo found with that tag."
	msgNothingToView = "No photos to review."
	msgReviewInfo    = "Photo from user %d with tag \"%s\""
	msgReviewPrompt  = "Approve or reject? /approve %s /reject %s"
	msgApproved      = "Photo %s approved."
	msgRejected      = "Photo %s rejected and deleted."
	msgNotAuthorized = "You are not authorized to %s photos."

	msgTagUsage     = "Usage: /tag <your_tag>"
	msgGetUsage     = "Usage: /get <tag>"
	msgApproveUsage = "Usage: /approve <file_id>"
	msgRejectUsage  = "Usage: /reject <file_id>"
)
