package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arcade-portfolio/contact"
)

// ContactData holds the message form of the contact screen.
type ContactData struct {
	Form *contact.Form
	Hint string // inline validation message
}

var Contact = donburi.NewComponentType[ContactData]()

// ProjectsData tracks which arcade machine was last played.
type ProjectsData struct {
	Selected string // project id, "" for none
}

var Projects = donburi.NewComponentType[ProjectsData]()
