package notify

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Plantillas de correo del sistema. Cuerpos en texto plano, un builder por evento.

// Welcome da la bienvenida a una cuenta recién registrada.
func Welcome(email, firstName string, role entity.Role) Message {
	return Message{
		To:      email,
		Subject: "Bienvenido a Almacén",
		Body: fmt.Sprintf("Hola %s,\n\nTu registro como %s fue exitoso.\n\n- El equipo de Almacén",
			firstName, role),
	}
}

// IncomingOrderCreated notifica al proveedor la creación de su pedido entrante.
func IncomingOrderCreated(s *entity.Supplier, p *entity.Product, o *entity.IncomingOrder) Message {
	return Message{
		To:      s.Email,
		Subject: "Pedido entrante creado",
		Body: fmt.Sprintf("Hola %s,\n\nTu pedido entrante de %s (cantidad: %d) fue creado correctamente.\n\n- El equipo de Almacén",
			s.FirstName, p.Name, o.QuantitySupply),
	}
}

// IncomingOrderUpdated notifica al proveedor la actualización de su pedido entrante.
func IncomingOrderUpdated(s *entity.Supplier, p *entity.Product, o *entity.IncomingOrder) Message {
	return Message{
		To:      s.Email,
		Subject: "Pedido entrante actualizado",
		Body: fmt.Sprintf("Hola %s,\n\nTu pedido entrante de %s (cantidad: %d) fue actualizado.\n\n- El equipo de Almacén",
			s.FirstName, p.Name, o.QuantitySupply),
	}
}

// IncomingOrderDeleted notifica al proveedor la eliminación de un pedido entrante.
func IncomingOrderDeleted(s *entity.Supplier, p *entity.Product, quantity int64) Message {
	return Message{
		To:      s.Email,
		Subject: "Pedido entrante eliminado",
		Body: fmt.Sprintf("Hola %s,\n\nUn pedido entrante de %s (cantidad: %d) fue eliminado.\n\n- El equipo de Almacén",
			s.FirstName, p.Name, quantity),
	}
}

// OutgoingOrderCreated notifica al cliente la creación de su pedido.
func OutgoingOrderCreated(c *entity.Customer, p *entity.Product, o *entity.OutgoingOrder) Message {
	return Message{
		To:      c.Email,
		Subject: "Pedido creado",
		Body: fmt.Sprintf("Hola %s,\n\nTu pedido de %s (cantidad: %d, total a pagar: %s) fue creado correctamente.\n\n- El equipo de Almacén",
			c.FirstName, p.Name, o.QuantityOrder, o.TotalPriceToPay.StringFixed(2)),
	}
}

// OutgoingOrderUpdated notifica al cliente la actualización de su pedido.
func OutgoingOrderUpdated(c *entity.Customer, p *entity.Product, o *entity.OutgoingOrder) Message {
	return Message{
		To:      c.Email,
		Subject: "Pedido actualizado",
		Body: fmt.Sprintf("Hola %s,\n\nTu pedido de %s (cantidad: %d, total a pagar: %s) fue actualizado.\n\n- El equipo de Almacén",
			c.FirstName, p.Name, o.QuantityOrder, o.TotalPriceToPay.StringFixed(2)),
	}
}

// OutgoingOrderDeleted notifica al cliente la eliminación de su pedido.
func OutgoingOrderDeleted(c *entity.Customer, p *entity.Product, o *entity.OutgoingOrder) Message {
	return Message{
		To:      c.Email,
		Subject: "Pedido eliminado",
		Body: fmt.Sprintf("Hola %s,\n\nTu pedido de %s (cantidad: %d) fue eliminado.\n\n- El equipo de Almacén",
			c.FirstName, p.Name, o.QuantityOrder),
	}
}

// LowStockAlert avisa al administrador que el stock cayó bajo el umbral configurado.
func LowStockAlert(admin *entity.User, p *entity.Product, s *entity.Stock) Message {
	return Message{
		To:      admin.Email,
		Subject: "Alerta de stock bajo",
		Body: fmt.Sprintf("El producto %s quedó con %d unidades disponibles.\n\nConsidera reponer inventario.",
			p.Name, s.AvailableQuantity),
	}
}

// ProfileDeleted avisa al dueño de un perfil (proveedor o cliente) que su cuenta fue eliminada.
func ProfileDeleted(firstName, email string) Message {
	return Message{
		To:      email,
		Subject: "Cuenta eliminada",
		Body: fmt.Sprintf("Hola %s,\n\nTu cuenta fue eliminada. Si fue un error, contáctanos.\n\n- El equipo de Almacén",
			firstName),
	}
}
