package service

// Messages are the user-facing texts of one resource's pages.
type Messages struct {
	Loading       string
	LoadFailed    string
	SearchFailed  string
	Empty         string
	ConfirmDelete string
	Deleted       string
	DeleteFailed  string
	Created       string
	CreateFailed  string
	Updated       string
	UpdateFailed  string
	DetailLoading string
	DetailFailed  string
	NotFound      string
	FormFailed    string
}

var BookMessages = Messages{
	Loading:       "Cargando libros...",
	LoadFailed:    "Error al cargar los libros",
	SearchFailed:  "Error en la búsqueda",
	Empty:         "No se encontraron libros",
	ConfirmDelete: "¿Estás seguro de que quieres eliminar este libro?",
	Deleted:       "Libro eliminado exitosamente",
	DeleteFailed:  "Error al eliminar el libro",
	Created:       "Libro creado exitosamente",
	CreateFailed:  "Error al crear el libro",
	Updated:       "Libro actualizado exitosamente",
	UpdateFailed:  "Error al actualizar el libro",
	DetailLoading: "Cargando libro...",
	DetailFailed:  "Error al cargar el libro",
	NotFound:      "Libro no encontrado",
	FormFailed:    "Error al cargar los datos del libro",
}

var UserMessages = Messages{
	Loading:       "Cargando usuarios...",
	LoadFailed:    "Error al cargar los usuarios",
	SearchFailed:  "Error en la búsqueda",
	Empty:         "No se encontraron usuarios",
	ConfirmDelete: "¿Estás seguro de que quieres eliminar este usuario?",
	Deleted:       "Usuario eliminado exitosamente",
	DeleteFailed:  "Error al eliminar el usuario",
	Created:       "Usuario creado exitosamente",
	CreateFailed:  "Error al crear el usuario",
	Updated:       "Usuario actualizado exitosamente",
	UpdateFailed:  "Error al actualizar el usuario",
	DetailLoading: "Cargando usuario...",
	DetailFailed:  "Error al cargar el usuario",
	NotFound:      "Usuario no encontrado",
	FormFailed:    "Error al cargar los datos del usuario",
}
